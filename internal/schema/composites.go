package schema

// Composite scenarios are pre-rendered: content is authored here and the
// formatter only joins phases with a separating rule and appends the
// timeline summary.

func defaultComposites() []CompositeScenario {
	return []CompositeScenario{
		{
			Name:        "usb_full_lifecycle",
			Title:       "USB 驱动完整生命周期",
			Instruction: "分析一个 USB 驱动从 insmod 到设备可用的完整执行流程",
			Code: `// 完整的 USB 驱动代码
static int my_probe(struct usb_interface *intf, const struct usb_device_id *id)
{
    struct my_device *dev = kzalloc(sizeof(*dev), GFP_KERNEL);
    usb_set_intfdata(intf, dev);
    return 0;
}

static void my_disconnect(struct usb_interface *intf)
{
    struct my_device *dev = usb_get_intfdata(intf);
    kfree(dev);
}

static struct usb_driver my_driver = {
    .name = "my_usb_driver",
    .probe = my_probe,
    .disconnect = my_disconnect,
    .id_table = my_id_table,
};

static int __init my_init(void) { return usb_register(&my_driver); }
static void __exit my_exit(void) { usb_deregister(&my_driver); }

module_init(my_init);
module_exit(my_exit);`,
			Phases: []CompositePhase{
				{
					Title: "阶段1：模块加载（insmod 命令）",
					Body: `执行时机：用户运行 insmod my_driver.ko

调用链：
1. sys_init_module (kernel/module.c)
2. load_module
3. do_init_module
4. my_init()                    ← 你的初始化函数
5. usb_register(&my_driver)     ← 注册驱动到 USB 子系统
6. insmod 命令返回成功

关键：此时 probe 函数还没有被调用！驱动只是注册了，但还没有匹配的设备`,
					Timeline: "insmod → my_init → usb_register → 返回（立即完成，probe 未调用）",
				},
				{
					Title: "阶段2：设备插入（异步事件）",
					Body: `执行时机：USB 设备物理插入

调用链：
1. USB Hub 检测到端口变化
2. hub_event (khubd 内核线程)
3. usb_hub_port_connect (drivers/usb/core/hub.c)
4. usb_new_device
5. device_add (drivers/base/core.c)
6. bus_probe_device
7. really_probe (drivers/base/dd.c)
8. usb_probe_interface (drivers/usb/core/driver.c)
9. my_probe()                   ← 你的 probe 函数

关键：probe 是由内核 khubd 线程异步调用的，不是 insmod 同步调用的！`,
					Timeline: "设备插入 → (异步) hub 检测 → probe（可能是几秒后）",
				},
				{
					Title: "阶段3：设备使用",
					Body: `用户打开设备：
  open("/dev/my_device") → sys_open → vfs_open → f_op->open()

用户读写设备：
  read(fd, ...) → sys_read → vfs_read → f_op->read()
  write(fd, ...) → sys_write → vfs_write → f_op->write()`,
					Timeline: "用户使用设备 → open/read/write",
				},
				{
					Title: "阶段4：设备拔出（异步事件）",
					Body: `调用链：
1. hub_event (khubd 内核线程)
2. usb_disconnect (drivers/usb/core/hub.c)
3. device_del
4. bus_remove_device
5. my_disconnect()              ← 你的 disconnect 函数`,
					Timeline: "设备拔出 → (异步) disconnect",
				},
				{
					Title: "阶段5：模块卸载（rmmod 命令）",
					Body: `调用链：
1. sys_delete_module (kernel/module.c)
2. my_exit()                    ← 你的退出函数
3. usb_deregister(&my_driver)
4. 如果还有设备连接，先调用 disconnect
5. free_module`,
					Timeline: "rmmod → my_exit → usb_deregister → 返回",
				},
			},
		},
		{
			Name:        "irq_workqueue",
			Title:       "中断 + WorkQueue 完整执行流程",
			Instruction: "分析中断触发后，通过 workqueue 处理的完整执行流程",
			Code: `static void my_work_handler(struct work_struct *work)
{
    struct my_device *dev = container_of(work, struct my_device, work);
    // 耗时操作，可以睡眠
    my_process_data(dev);
}

static irqreturn_t my_irq_handler(int irq, void *dev_id)
{
    struct my_device *dev = dev_id;
    // 快速处理
    u32 status = readl(dev->regs + STATUS_REG);
    writel(status, dev->regs + STATUS_REG);  // 清除中断
    schedule_work(&dev->work);  // 延迟处理
    return IRQ_HANDLED;
}`,
			Phases: []CompositePhase{
				{
					Title: "阶段1：硬件中断（上半部）",
					Body: `执行上下文：硬中断上下文（不可睡眠，快速执行！）

调用链：
1. 硬件产生中断信号
2. CPU 响应中断，保存上下文
3. do_IRQ (arch/x86/kernel/irq.c)
4. handle_irq
5. generic_handle_irq
6. handle_edge_irq / handle_fasteoi_irq
7. handle_irq_event
8. my_irq_handler()             ← 你的中断处理函数
9. 快速处理（读状态、清中断）
10. schedule_work(&dev->work)    ← 提交工作到队列
11. 返回 IRQ_HANDLED

关键：上半部必须快速完成，不能睡眠！schedule_work 只是"提交"，不会执行 handler`,
					Timeline: "硬件中断 → my_irq_handler (快速, <100us) → schedule_work (提交任务)",
				},
				{
					Title: "阶段2：软中断 / 工作队列调度（下半部前奏）",
					Body: `执行时机：中断返回前或稍后

调用链：
1. irq_exit (kernel/softirq.c)
2. invoke_softirq
3. do_softirq
4. __do_softirq`,
					Timeline: "中断返回 → 软中断收尾",
				},
				{
					Title: "阶段3：工作队列执行（下半部）",
					Body: `执行上下文：进程上下文（kworker 线程，可以睡眠）

调用链：
1. kworker/xxx 线程被调度
2. worker_thread (kernel/workqueue.c)
3. process_one_work
4. worker->current_func = work->func
5. my_work_handler()            ← 你的工作处理函数
6. 可以执行耗时操作、睡眠

为什么要分上下半部？中断处理必须快速，否则影响系统响应；
某些操作（I2C 通信、申请内存）可能需要睡眠，只能放到下半部。`,
					Timeline: "kworker 调度 → my_work_handler (可以慢, 可睡眠，ms 级延迟)",
				},
			},
		},
		{
			Name:        "insmod_probe_relation",
			Title:       "insmod 和 probe 的关系：异步！",
			Instruction: "解释 insmod 加载模块和 probe 函数调用的关系，它们是同步还是异步？",
			Code: `// insmod 执行时会调用 my_init
static int __init my_init(void)
{
    printk("my_init called\n");
    return platform_driver_register(&my_driver);  // 注册驱动
}

// probe 函数不是 insmod 时调用的！
static int my_probe(struct platform_device *pdev)
{
    printk("my_probe called\n");
    return 0;
}`,
			Phases: []CompositePhase{
				{
					Title: "常见误解",
					Body: `很多人以为 insmod 会直接调用 probe，这是错误的！

错误理解：insmod → my_init → probe → 返回`,
					Timeline: "误解：insmod 同步调用 probe（错误）",
				},
				{
					Title: "正确理解",
					Body: `insmod 只是注册驱动，probe 是设备匹配时才调用的。

insmod 执行流程：
1. sys_init_module
2. load_module
3. do_init_module
4. my_init()
5. platform_driver_register(&my_driver)  // 只是注册
6. insmod 命令退出

probe 执行流程（异步）：
- 如果设备已存在（设备树）：insmod 过程中可能触发 probe
- 如果设备后插入（USB）：设备插入时才触发 probe`,
					Timeline: "insmod 注册驱动 → 设备匹配时才调用 probe",
				},
				{
					Title: "不同情况分析",
					Body: `情况1：Platform 驱动 + 设备树
  设备树中已有匹配节点时，probe 可能在 insmod 过程中被调用，
  但这仍然是"设备匹配触发"，不是"insmod 直接调用"。

情况2：USB 驱动
  insmod 只注册驱动；直到 USB 设备插入且 ID 匹配，probe 才被调用。
  调用者是 khubd 内核线程，不是 insmod 进程。

情况3：手动创建设备
  在 my_init 中调用 platform_device_register 可能立即触发 probe。

关键结论：insmod 返回 ≠ probe 已执行；probe 是"设备-驱动匹配"触发的；
对于热插拔设备，probe 和 insmod 是完全异步的。`,
					Timeline: "热插拔设备：probe 与 insmod 完全异步",
				},
			},
		},
		{
			Name:        "mmap_page_fault",
			Title:       "mmap + 缺页中断完整流程",
			Instruction: "分析 mmap 后首次访问触发缺页中断的完整流程",
			Code: `// 驱动实现 mmap
static int my_mmap(struct file *filp, struct vm_area_struct *vma)
{
    // 只是建立映射，不分配物理页
    vma->vm_ops = &my_vm_ops;
    return 0;
}

static vm_fault_t my_fault(struct vm_fault *vmf)
{
    // 缺页时分配物理页
    struct page *page = alloc_page(GFP_KERNEL);
    vmf->page = page;
    return 0;
}

static struct vm_operations_struct my_vm_ops = {
    .fault = my_fault,
};`,
			Phases: []CompositePhase{
				{
					Title: "阶段1：mmap 系统调用",
					Body: `执行上下文：进程上下文

内核调用链：
1. sys_mmap (mm/mmap.c)
2. ksys_mmap_pgoff
3. vm_mmap_pgoff
4. do_mmap
5. mmap_region
6. call_mmap
7. my_mmap()                    ← 你的 mmap 实现
8. 设置 vma->vm_ops = &my_vm_ops

关键：此时只是建立了虚拟地址映射，没有分配物理页！`,
					Timeline: "mmap() → 只建立 VMA，不分配物理页",
				},
				{
					Title: "阶段2：首次访问触发缺页",
					Body: `用户空间：
  buf[0] = 'A';  // 写入第一个字节

硬件行为：
1. CPU 尝试访问 buf 地址
2. MMU 查页表，发现没有映射
3. CPU 产生缺页异常 (Page Fault)`,
					Timeline: "首次访问 → MMU 缺页 → 缺页异常",
				},
				{
					Title: "阶段3：缺页中断处理",
					Body: `执行上下文：中断上下文 → 进程上下文

调用链：
1. CPU 缺页异常
2. do_page_fault (arch/x86/mm/fault.c)
3. handle_mm_fault (mm/memory.c)
4. handle_pte_fault
5. do_fault
6. vma->vm_ops->fault = my_fault  ← 你的缺页处理
7. 分配物理页，建立页表映射
8. 返回用户空间，重新执行访问指令

这就是"按需分页"（Demand Paging）：不预先分配所有物理页，
访问时才分配，节省内存。同一页后续访问直接命中，不再缺页。`,
					Timeline: "my_fault() → 分配物理页 → 建立映射 → 重新执行访问",
				},
			},
		},
	}
}
