package synth

import "fmt"

// Code snippet synthesis. Snippets name the handler my_<callback> so
// the field-target answer is derivable from the callback name alone.
// Frameworks and mechanisms without a natural illustration return the
// empty string, which the record carries as an empty input.

// frameworkSnippet returns a minimal driver skeleton registering
// my_<callback> for the given framework.
func frameworkSnippet(framework, callback string) string {
	switch framework {
	case "usb_driver":
		return fmt.Sprintf(`static int my_%s(struct usb_interface *intf, const struct usb_device_id *id)
{
    printk("my_%s called\n");
    return 0;
}

static struct usb_driver my_driver = {
    .name = "my_usb_driver",
    .%s = my_%s,
    .id_table = my_id_table,
};

module_usb_driver(my_driver);`, callback, callback, callback, callback)

	case "platform_driver":
		return fmt.Sprintf(`static int my_%s(struct platform_device *pdev)
{
    printk("my_%s called\n");
    return 0;
}

static struct platform_driver my_driver = {
    .driver = {
        .name = "my_platform_driver",
    },
    .%s = my_%s,
};

module_platform_driver(my_driver);`, callback, callback, callback, callback)

	case "file_operations":
		return fmt.Sprintf(`static int my_%s(struct inode *inode, struct file *filp)
{
    printk("my_%s called\n");
    return 0;
}

static struct file_operations my_fops = {
    .owner = THIS_MODULE,
    .%s = my_%s,
};`, callback, callback, callback, callback)
	}
	return ""
}

// asyncSnippet returns an illustrative bind+trigger snippet for the
// given mechanism.
func asyncSnippet(mechanism string) string {
	switch mechanism {
	case "workqueue":
		return `static void my_work_handler(struct work_struct *work)
{
    struct my_device *dev = container_of(work, struct my_device, work);
    // 耗时操作
    printk("Work executed\n");
}

static int my_probe(struct platform_device *pdev)
{
    struct my_device *dev = devm_kzalloc(&pdev->dev, sizeof(*dev), GFP_KERNEL);
    INIT_WORK(&dev->work, my_work_handler);
    return 0;
}

static irqreturn_t my_irq_handler(int irq, void *dev_id)
{
    struct my_device *dev = dev_id;
    schedule_work(&dev->work);
    return IRQ_HANDLED;
}`

	case "timer":
		return `static void my_timer_callback(struct timer_list *t)
{
    struct my_device *dev = from_timer(dev, t, timer);
    printk("Timer expired\n");
    mod_timer(&dev->timer, jiffies + HZ);  // 重新启动
}

static int my_probe(struct platform_device *pdev)
{
    struct my_device *dev = devm_kzalloc(&pdev->dev, sizeof(*dev), GFP_KERNEL);
    timer_setup(&dev->timer, my_timer_callback, 0);
    mod_timer(&dev->timer, jiffies + HZ);  // 1秒后触发
    return 0;
}`

	case "tasklet":
		return `static void my_tasklet_handler(struct tasklet_struct *t)
{
    struct my_device *dev = from_tasklet(dev, t, tasklet);
    printk("Tasklet executed\n");
}

static int my_probe(struct platform_device *pdev)
{
    struct my_device *dev = devm_kzalloc(&pdev->dev, sizeof(*dev), GFP_KERNEL);
    tasklet_setup(&dev->tasklet, my_tasklet_handler);
    return 0;
}

static irqreturn_t my_irq_handler(int irq, void *dev_id)
{
    struct my_device *dev = dev_id;
    tasklet_schedule(&dev->tasklet);
    return IRQ_HANDLED;
}`

	case "irq":
		return `static irqreturn_t my_irq_handler(int irq, void *dev_id)
{
    struct my_device *dev = dev_id;
    // 快速处理，不能睡眠！
    u32 status = readl(dev->regs + STATUS_REG);
    writel(status, dev->regs + STATUS_REG);  // 清除中断
    return IRQ_HANDLED;
}

static int my_probe(struct platform_device *pdev)
{
    struct my_device *dev = devm_kzalloc(&pdev->dev, sizeof(*dev), GFP_KERNEL);
    int irq = platform_get_irq(pdev, 0);
    devm_request_irq(&pdev->dev, irq, my_irq_handler, 0, "my_device", dev);
    return 0;
}`
	}
	return ""
}

// moduleSnippet illustrates module init/exit for lifecycle records.
func moduleSnippet() string {
	return `static int __init my_init(void)
{
    printk("Module loaded\n");
    return usb_register(&my_driver);
}

static void __exit my_exit(void)
{
    usb_deregister(&my_driver);
    printk("Module unloaded\n");
}

module_init(my_init);
module_exit(my_exit);`
}

func memorySnippet(operation string) string {
	switch operation {
	case "kmalloc":
		return `struct my_device *dev = kmalloc(sizeof(*dev), GFP_KERNEL);
if (!dev)
    return -ENOMEM;`
	case "page_fault":
		return `// 用户空间 mmap 后首次访问
char *buf = mmap(NULL, 4096, PROT_READ|PROT_WRITE, MAP_ANONYMOUS|MAP_PRIVATE, -1, 0);
buf[0] = 'A';  // 触发缺页中断`
	}
	return ""
}

// schedulerSnippet is a placeholder: scheduler operations have no
// natural driver-side code illustration.
func schedulerSnippet() string {
	return "// 进程调度相关代码"
}

func networkSnippet(flow string) string {
	if flow != "napi_poll" {
		return ""
	}
	return `static int my_poll(struct napi_struct *napi, int budget)
{
    struct my_device *dev = container_of(napi, struct my_device, napi);
    int done = 0;

    while (done < budget) {
        struct sk_buff *skb = my_receive_packet(dev);
        if (!skb)
            break;
        napi_gro_receive(napi, skb);
        done++;
    }

    if (done < budget) {
        napi_complete_done(napi, done);
        my_enable_irq(dev);  // 重新使能中断
    }
    return done;
}

static irqreturn_t my_irq_handler(int irq, void *dev_id)
{
    struct my_device *dev = dev_id;
    my_disable_irq(dev);
    napi_schedule(&dev->napi);
    return IRQ_HANDLED;
}`
}

func powerSnippet(operation string) string {
	switch operation {
	case "system_suspend", "runtime_suspend":
		return `static int my_suspend(struct device *dev)
{
    struct my_device *mydev = dev_get_drvdata(dev);
    // 保存状态，停止设备
    my_save_state(mydev);
    my_stop_device(mydev);
    return 0;
}

static SIMPLE_DEV_PM_OPS(my_pm_ops, my_suspend, my_resume);`
	}
	return ""
}

func syncSnippet(primitive string) string {
	switch primitive {
	case "mutex":
		return `static DEFINE_MUTEX(my_mutex);

void my_function(void)
{
    mutex_lock(&my_mutex);
    // 临界区，可以睡眠
    msleep(10);
    mutex_unlock(&my_mutex);
}`
	case "spinlock":
		return `static DEFINE_SPINLOCK(my_lock);

irqreturn_t my_irq_handler(int irq, void *dev_id)
{
    unsigned long flags;
    spin_lock_irqsave(&my_lock, flags);
    // 临界区，不能睡眠！
    spin_unlock_irqrestore(&my_lock, flags);
    return IRQ_HANDLED;
}`
	}
	return ""
}
